// Package locator resolves client IP addresses of HTTP requests and
// translates IP addresses into subdivision (state, province, region)
// codes using a local City database.
package locator

import (
	"net"
	"net/http"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/juju/errors"
	geoip2 "github.com/oschwald/geoip2-golang"
	log "github.com/sirupsen/logrus"

	"github.com/9seconds/clientgeo/geodb"
)

// Database is a point-query interface to the City database. geodb.Reader
// implements it.
type Database interface {
	City(net.IP) (*geoip2.City, error)
	Close() error
}

// Opener opens a database by its path.
type Opener func(path string) (Database, error)

// OpenGeoDB is a default Opener. Returned Database is *geodb.Reader.
func OpenGeoDB(path string) (Database, error) {
	reader, err := geodb.Open(path)
	if err != nil {
		return nil, err
	}

	return reader, nil
}

// Location is a result of the address lookup.
type Location struct {
	IP              string `json:"ip"`
	Country         string `json:"country"`
	Subdivision     string `json:"subdivision"`
	SubdivisionName string `json:"subdivision_name"`
}

// Locator resolves client addresses and their subdivisions. It owns
// the database and is safe for concurrent use.
type Locator struct {
	db    Database
	cache *lru.Cache
}

// New creates a new locator on top of the opened database. If cacheSize
// is positive, successful lookups are kept in LRU cache of this size.
func New(db Database, cacheSize int) (*Locator, error) {
	loc := &Locator{db: db}

	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			return nil, errors.Annotate(err, "Cannot create lookup cache")
		}
		loc.cache = cache
	}

	return loc, nil
}

// Open opens a database with opener and creates a locator on top of
// it. Relative paths are resolved against rootDir.
func Open(path, rootDir string, opener Opener, cacheSize int) (*Locator, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(rootDir, path)
	}

	db, err := opener(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path":  path,
			"error": err.Error(),
		}).Error("Connection to the database could not be established.")

		return nil, errors.Annotate(err, "Connection to the database could not be established")
	}

	loc, err := New(db, cacheSize)
	if err != nil {
		db.Close() // nolint: errcheck

		return nil, err
	}

	return loc, nil
}

// ClientIP resolves client address of the request.
func (l *Locator) ClientIP(req *http.Request) string {
	return ClientIP(req)
}

// SubdivisionCode returns ISO code of the most specific subdivision
// of ip. Empty string with nil error means that database knows the
// address but has no subdivision data for it.
//
// Errors satisfy errors.IsNotValid for malformed addresses,
// errors.IsNotFound for addresses absent in the database and
// geodb.IsIOFailure if database cannot be read.
func (l *Locator) SubdivisionCode(ip string) (string, error) {
	location, err := l.Lookup(ip)
	if err != nil {
		return "", err
	}

	return location.Subdivision, nil
}

// Lookup is the same as SubdivisionCode but returns more details.
func (l *Locator) Lookup(ip string) (Location, error) {
	addr := net.ParseIP(ip)
	if addr == nil {
		return Location{}, errors.NotValidf("IP address %q", ip)
	}

	cacheKey := addr.String()

	if l.cache != nil {
		if value, ok := l.cache.Get(cacheKey); ok {
			return value.(Location), nil
		}
	}

	city, err := l.db.City(addr)
	if err != nil {
		log.WithFields(log.Fields{
			"ip":    cacheKey,
			"error": err.Error(),
		}).Debug("Cannot resolve ip.")

		return Location{}, errors.Annotatef(err, "Cannot lookup %s", cacheKey)
	}

	location := Location{
		IP:          cacheKey,
		Country:     strings.ToUpper(city.Country.IsoCode),
		Subdivision: geodb.MostSpecificSubdivision(city),
	}
	if len(city.Subdivisions) > 0 {
		location.SubdivisionName = city.Subdivisions[len(city.Subdivisions)-1].Names["en"]
	}

	if l.cache != nil {
		l.cache.Add(cacheKey, location)
	}

	return location, nil
}

// Close closes underlying database.
func (l *Locator) Close() error {
	return l.db.Close()
}
