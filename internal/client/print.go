package client

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/atinyakov/FleetDesk/internal/models"
)

// PrintCompanies writes companies as an aligned table.
func PrintCompanies(w io.Writer, companies []models.TransportCompany) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tADDRESS\tCONTACT")
	for _, c := range companies {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.Address, c.ContactNumber)
	}
	_ = tw.Flush()
}

// PrintVehicles writes vehicles as an aligned table.
func PrintVehicles(w io.Writer, vehicles []models.Vehicle) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tTYPE\tCAPACITY\tCOMPANY")
	for _, v := range vehicles {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", v.VehicleNumber, v.VehicleType, v.Capacity, v.CompanyName)
	}
	_ = tw.Flush()
}

// PrintTrips writes trips as an aligned table, dates in local time.
func PrintTrips(w io.Writer, trips []models.Trip) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tROUTE\tPRICE\tCOMPANY\tVEHICLE\tSTATUS")
	for _, t := range trips {
		fmt.Fprintf(tw, "%s\t%s\t%s -> %s\t%.2f\t%s\t%s\t%s\n",
			t.ID, t.TripDateTime.Local().Format(time.DateTime), t.Source, t.Destination,
			t.Price, t.TransportCompanyName, t.VehicleNumber, t.Status)
	}
	_ = tw.Flush()
}
