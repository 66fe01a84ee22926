// Package main writes a development CA and a server certificate signed by
// it into the "certs" directory, so the API can run with TLS_CERT and
// TLS_KEY and the client can trust it with -ca certs/ca.crt.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atinyakov/FleetDesk/internal/certgen"
)

const caValidity = 10 * 365 * 24 * time.Hour

func main() {
	dir := flag.String("dir", "certs", "output directory")
	hosts := flag.String("hosts", "localhost,127.0.0.1", "comma-separated server host names and IPs")
	flag.Parse()

	if err := run(*dir, splitHosts(*hosts)); err != nil {
		fmt.Fprintln(os.Stderr, "certgen:", err)
		os.Exit(1)
	}
	fmt.Printf("Certificates generated into ./%s\n", *dir)
}

func splitHosts(s string) []string {
	var out []string
	for _, h := range strings.Split(s, ",") {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}

// run reuses dir/ca.crt and dir/ca.key when present so that clients
// already trusting the CA keep working, and always issues a new server pair.
func run(dir string, hosts []string) error {
	caCertPath := filepath.Join(dir, "ca.crt")
	caKeyPath := filepath.Join(dir, "ca.key")

	caCert, caKey, err := certgen.LoadCACredentials(caCertPath, caKeyPath)
	if err != nil {
		if _, statErr := os.Stat(caCertPath); statErr == nil {
			return err
		}
		cert, key, genErr := certgen.GenerateCA("FleetDesk Dev CA", caValidity)
		if genErr != nil {
			return genErr
		}
		keyPEM, encErr := certgen.EncodeKey(key)
		if encErr != nil {
			return encErr
		}
		if err := certgen.WritePair(dir, "ca", certgen.EncodeCertificate(cert.Raw), keyPEM); err != nil {
			return err
		}
		caCert, caKey = cert, key
	}

	certPEM, keyPEM, err := certgen.GenerateServerCertificate(hosts, caCert, caKey)
	if err != nil {
		return err
	}
	return certgen.WritePair(dir, "server", certPEM, keyPEM)
}
