// Package geodb is a thin wrapper around MaxMind City database reader.
// It opens a database file once and answers point queries.
package geodb

import (
	"net"
	"strings"

	"github.com/juju/errors"
	geoip2 "github.com/oschwald/geoip2-golang"
	maxminddb "github.com/oschwald/maxminddb-golang"
)

// Reader is an opened City database. It is safe for concurrent use.
type Reader struct {
	db *maxminddb.Reader
}

// Open opens a database file at path. Only City-like databases are
// accepted (GeoLite2-City, GeoIP2-City, GeoIP2-Enterprise).
func Open(path string) (*Reader, error) {
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, newIOError(err, "cannot open database %s", path)
	}

	dbType := db.Metadata.DatabaseType
	if !strings.Contains(dbType, "City") && !strings.Contains(dbType, "Enterprise") {
		db.Close() // nolint: errcheck

		return nil, newIOError(errors.Errorf("unsupported database type %q", dbType),
			"cannot open database %s", path)
	}

	return &Reader{db: db}, nil
}

// City returns a city record for the given address. If there is no
// entry for this address, returned error satisfies errors.IsNotFound.
// Addresses which cannot be looked up in this database at all (nil,
// IPv6 in IPv4-only database) satisfy errors.IsNotValid.
func (r *Reader) City(ip net.IP) (*geoip2.City, error) {
	if ip == nil {
		return nil, errors.NotValidf("empty IP address")
	}

	if r.db.Metadata.IPVersion == 4 && ip.To4() == nil {
		return nil, errors.NotValidf("IPv6 address %s for IPv4-only database", ip)
	}

	city := &geoip2.City{}

	_, ok, err := r.db.LookupNetwork(ip, city)
	if err != nil {
		return nil, newIOError(err, "cannot lookup %s", ip)
	}

	if !ok {
		return nil, errors.NotFoundf("address %s", ip)
	}

	return city, nil
}

// Metadata returns metadata section of the opened database.
func (r *Reader) Metadata() maxminddb.Metadata {
	return r.db.Metadata
}

// Close releases underlying file. Any subsequent lookups fail with
// IOError.
func (r *Reader) Close() error {
	return r.db.Close()
}

// MostSpecificSubdivision returns ISO code of the most specific
// subdivision of the record (the last one). Empty string means that
// record has no subdivision data.
func MostSpecificSubdivision(city *geoip2.City) string {
	if city == nil || len(city.Subdivisions) == 0 {
		return ""
	}

	return city.Subdivisions[len(city.Subdivisions)-1].IsoCode
}
