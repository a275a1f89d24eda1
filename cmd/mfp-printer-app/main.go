// MFP                 - Miulti-Function Printers and scanners toolkit
// cmd/mfp-printer-app - IPP Printer Application process
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// The main() function.
//
// This wires papp.Server to a listening socket and, where Avahi is
// reachable, a DNS-SD advertisement. The Printer/Job Manager behind
// it is the minimal in-memory demo in memstore.go -- a real Printer
// Application shell would substitute its own persistent one without
// papp itself changing.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/OpenPrinting/go-mfp/discovery"
	"github.com/OpenPrinting/go-mfp/log"
	"github.com/OpenPrinting/go-mfp/papp"
	"github.com/OpenPrinting/go-mfp/proto/ipp"
)

func main() {
	port := flag.Int("p", 60000, "TCP port to listen on")
	name := flag.String("name", "MFP Virtual Printer", "printer name, advertised over DNS-SD")
	debug := flag.Bool("d", false, "enable debug logging")
	noAdvertise := flag.Bool("no-advertise", false, "disable DNS-SD advertisement")
	flag.Parse()

	level := log.LevelInfo
	if *debug {
		level = log.LevelDebug
	}
	logger := log.NewLogger(os.Stderr, level)
	ctx := log.NewContext(context.Background(), logger)

	mgr := newMemManager()
	sys := &memSystem{}

	driver := papp.DriverData{
		Name:           "MFP Virtual Printer",
		ColorSupported: ipp.ColorModeColor | ipp.ColorModeMonochrome,
		ColorDefault:   ipp.ColorModeColor,
		SidesSupported: ipp.SidesBitOneSided | ipp.SidesBitTwoSidedLongEdge,
		SidesDefault:   ipp.SidesBitOneSided,
		QualitySupported: []int{
			ipp.QualityDraft, ipp.QualityNormal, ipp.QualityHigh,
		},
		QualityDefault:     ipp.QualityNormal,
		OrientationDefault: ipp.OrientPortrait,
		Sources:            []string{"main"},
		MediaSupported:     []ipp.KwMedia{"na_letter_8.5x11in", "iso_a4_210x297mm"},
	}

	printer := papp.NewPrinter(1, *name, "00000000-0000-0000-0000-000000000001", "/ipp/print", driver)
	mgr.addPrinter("/ipp/print", printer)

	srv := papp.NewServer(mgr, sys, mgr, nil)

	mux := http.NewServeMux()
	mux.Handle("/ipp/print", srv)

	addr := fmt.Sprintf(":%d", *port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(ctx, "listen: %s", err)
	}
	log.Info(ctx, "listening on %s", ln.Addr())

	if !*noAdvertise {
		pub := discovery.NewPublisher([]discovery.ServiceInfo{
			{
				Type: "_ipp._tcp",
				Port: *port,
				Txt: discovery.PrinterTxtRecord("ipp/print", "",
					printer.UUID, true, true,
					[]string{ipp.DocumentFormatPDF, ipp.DocumentFormatPWGRaster}),
			},
		})
		if err := pub.Publish(*name); err != nil {
			log.Warning(ctx, "DNS-SD advertisement disabled: %s", err)
		} else {
			defer pub.Unpublish()
		}
	}

	httpSrv := &http.Server{Handler: mux}
	log.Fatal(ctx, "serve: %s", httpSrv.Serve(ln))
}
