package locator

import (
	"net"
	"reflect"

	geoip2 "github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/mock"
)

type DatabaseMock struct {
	mock.Mock
}

func (m *DatabaseMock) City(ip net.IP) (*geoip2.City, error) {
	args := m.Called(ip)
	city, _ := args.Get(0).(*geoip2.City)

	return city, args.Error(1)
}

func (m *DatabaseMock) Close() error {
	return m.Called().Error(0)
}

func makeCity(country string, subdivisions ...string) *geoip2.City {
	city := &geoip2.City{}
	city.Country.IsoCode = country

	value := reflect.ValueOf(&city.Subdivisions).Elem()
	value.Set(reflect.MakeSlice(value.Type(), len(subdivisions), len(subdivisions)))

	for i, code := range subdivisions {
		city.Subdivisions[i].IsoCode = code
		city.Subdivisions[i].Names = map[string]string{"en": "Name of " + code}
	}

	return city
}
