// MFP - Miulti-Function Printers and scanners toolkit
// Device discovery
//
// Copyright (C) 2024 and up by Alexander Pevzner (pzz@apevzner.com)
// See LICENSE for license terms and conditions
//
// DNS-SD advertisement for IPP printers

package discovery

import (
	"fmt"

	"github.com/OpenPrinting/go-avahi"
	"github.com/OpenPrinting/go-mfp/internal/netstate"
)

// TxtItem is a single DNS-SD TXT record key/value pair.
type TxtItem struct {
	Key, Value string
}

// TxtRecord is an ordered collection of [TxtItem].
type TxtRecord []TxtItem

// Add appends an item to the record.
func (txt *TxtRecord) Add(key, value string) {
	*txt = append(*txt, TxtItem{key, value})
}

// AddIfNotEmpty appends an item only if value is non-empty, reporting
// whether it did.
func (txt *TxtRecord) AddIfNotEmpty(key, value string) bool {
	if value == "" {
		return false
	}
	txt.Add(key, value)
	return true
}

// export converts the record into the [][]byte form avahi's
// AddService wants, one "key=value" entry per slice element.
func (txt TxtRecord) export() [][]byte {
	out := make([][]byte, len(txt))
	for i, item := range txt {
		out[i] = []byte(item.Key + "=" + item.Value)
	}
	return out
}

// ServiceInfo describes one DNS-SD service instance to advertise.
type ServiceInfo struct {
	Type string    // e.g. "_ipp._tcp" or "_ipps._tcp"
	Port int       // TCP port the service listens on
	Txt  TxtRecord // TXT record, e.g. "rp=ipp/print", "pdl=application/pdf"
}

// PrinterTxtRecord builds the standard IPP Everywhere TXT record for a
// printer, following the usual bonjour-printing conventions
// (txtvers/qtotal/rp/adminurl/UUID/Color/Duplex/pdl).
func PrinterTxtRecord(rp, adminURL, uuid string, colorSupported, duplexSupported bool, pdls []string) TxtRecord {
	txt := TxtRecord{}
	txt.Add("txtvers", "1")
	txt.Add("qtotal", "1")
	txt.AddIfNotEmpty("rp", rp)
	txt.AddIfNotEmpty("adminurl", adminURL)
	txt.AddIfNotEmpty("UUID", uuid)
	txt.Add("Color", boolYN(colorSupported))
	txt.Add("Duplex", boolYN(duplexSupported))
	if len(pdls) > 0 {
		pdl := pdls[0]
		for _, p := range pdls[1:] {
			pdl += "," + p
		}
		txt.Add("pdl", pdl)
	}
	return txt
}

func boolYN(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

// Publisher advertises a fixed set of DNS-SD services under a single
// service instance name, via Avahi's D-Bus API (go-avahi -- pure Go,
// no cgo required).
type Publisher struct {
	Instance string
	Services []ServiceInfo

	client *avahi.Client
	group  *avahi.EntryGroup
}

// NewPublisher creates a [Publisher] for the given services. Call
// [Publisher.Publish] to actually register them with the local Avahi
// daemon.
func NewPublisher(services []ServiceInfo) *Publisher {
	return &Publisher{Services: services}
}

// Publish registers every configured service under instance with the
// local Avahi daemon, scoped to the interfaces [netstate.Interfaces]
// reports as up and non-loopback. If that enumeration fails or turns
// up nothing (e.g. inside a network namespace with no visible
// interface list), it falls back to advertising on every interface via
// avahi.IfIndexUnspec.
func (p *Publisher) Publish(instance string) error {
	p.Instance = instance

	client, err := avahi.NewClient(avahi.ClientFlagsNone)
	if err != nil {
		return fmt.Errorf("discovery: avahi client: %w", err)
	}

	group, err := client.EntryGroupNew()
	if err != nil {
		client.Close()
		return fmt.Errorf("discovery: avahi entry group: %w", err)
	}

	ifIndexes := []avahi.IfIndex{avahi.IfIndexUnspec}
	if ifs, err := netstate.Interfaces(); err == nil && len(ifs) > 0 {
		ifIndexes = ifIndexes[:0]
		for _, nif := range ifs {
			ifIndexes = append(ifIndexes, avahi.IfIndex(nif.Index()))
		}
	}

	for _, svc := range p.Services {
		for _, ifIndex := range ifIndexes {
			err = group.AddService(
				ifIndex, avahi.ProtoUnspec, 0,
				instance, svc.Type, "", "",
				uint16(svc.Port), svc.Txt.export(),
			)
			if err != nil {
				group.Free()
				client.Close()
				return fmt.Errorf("discovery: publishing %s: %w", svc.Type, err)
			}
		}
	}

	if err := group.Commit(); err != nil {
		group.Free()
		client.Close()
		return fmt.Errorf("discovery: committing entry group: %w", err)
	}

	p.client = client
	p.group = group
	return nil
}

// Unpublish withdraws every service registered by [Publisher.Publish]
// and releases the Avahi client connection.
func (p *Publisher) Unpublish() {
	if p.group != nil {
		p.group.Free()
		p.group = nil
	}
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
}
