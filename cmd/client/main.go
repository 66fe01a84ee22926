// Package main is an interactive admin shell for the FleetDesk API.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atinyakov/FleetDesk/internal/client"
	"github.com/atinyakov/FleetDesk/internal/models"
)

var (
	version   string
	buildDate string
)

const helpText = `Available commands:
  login                 log in (prompts for email and password)
  register              create an admin and log in
  me                    show the current session
  companies             list transport companies
  vehicles [company]    list vehicles, optionally of one company
  trips [key=value...]  list trips; keys: company, vehicle, status, source, destination
  pay <trip-id>         mark a trip paid
  unpay <trip-id>       mark a trip not paid
  logout                end the session
  exit`

// parseTripFilter turns key=value words into a trip filter.
func parseTripFilter(args []string) (models.TripFilter, error) {
	var f models.TripFilter
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return f, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch key {
		case "company":
			f.CompanyName = value
		case "vehicle":
			f.VehicleNumber = value
		case "status":
			f.Status = models.TripStatus(value)
		case "source":
			f.Source = value
		case "destination":
			f.Destination = value
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
	}
	return f, nil
}

// repl runs the interactive shell loop until exit or end of input.
func repl(ctx context.Context, c *client.Client, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "fleetdesk> ")
		if !scanner.Scan() {
			break
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		var err error
		switch args[0] {
		case "help":
			fmt.Fprintln(out, helpText)
		case "login", "register":
			email, password := client.PromptCredentials(scanner, out)
			if args[0] == "login" {
				err = c.Login(ctx, email, password)
			} else {
				err = c.Register(ctx, email, password)
			}
			if err == nil {
				fmt.Fprintln(out, "Logged in as", email)
			}
		case "me":
			var s *client.Session
			if s, err = c.Me(ctx); err == nil {
				fmt.Fprintf(out, "admin %s, session expires at unix %d\n", s.ID, s.ExpiresAt)
			}
		case "companies":
			var companies []models.TransportCompany
			if companies, err = c.ListCompanies(ctx); err == nil {
				client.PrintCompanies(out, companies)
			}
		case "vehicles":
			company := strings.Join(args[1:], " ")
			var vehicles []models.Vehicle
			if vehicles, err = c.ListVehicles(ctx, company); err == nil {
				client.PrintVehicles(out, vehicles)
			}
		case "trips":
			var f models.TripFilter
			if f, err = parseTripFilter(args[1:]); err != nil {
				break
			}
			var trips []models.Trip
			if trips, err = c.ListTrips(ctx, f); err == nil {
				client.PrintTrips(out, trips)
			}
		case "pay", "unpay":
			if len(args) < 2 {
				fmt.Fprintf(out, "Usage: %s <trip-id>\n", args[0])
				continue
			}
			status := models.TripPaid
			if args[0] == "unpay" {
				status = models.TripNotPaid
			}
			var trip *models.Trip
			if trip, err = c.SetTripStatus(ctx, args[1], status); err == nil {
				fmt.Fprintf(out, "Trip %s is now %s\n", trip.ID, trip.Status)
			}
		case "logout":
			if err = c.Logout(ctx); err == nil {
				fmt.Fprintln(out, "Logged out")
			}
		case "exit":
			fmt.Fprintln(out, "Bye")
			return
		default:
			fmt.Fprintln(out, "Unknown command. Type 'help' for a list of commands.")
		}

		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}

// main parses command-line flags and starts the shell.
func main() {
	var (
		baseURL string
		caFile  string
		showVer bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:5000", "server base URL")
	flag.StringVar(&caFile, "ca", "", "path to CA cert for an HTTPS server (e.g. certs/ca.crt)")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("FleetDesk Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	c, err := client.New(baseURL, caFile)
	if err != nil {
		log.Fatal(err)
	}
	repl(context.Background(), c, os.Stdin, os.Stdout)
}
