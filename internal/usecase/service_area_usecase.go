package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLocation = errors.New("invalid location")

const serviceAreaEstimate = "24-48 hours"

// DefaultServedLocalities is the fixed list of areas the installation crews cover.
var DefaultServedLocalities = []string{
	"Nairobi",
	"Westlands",
	"Kilimani",
	"Karen",
	"Lavington",
	"Kileleshwa",
	"Runda",
	"Parklands",
	"Ruaka",
	"Kiambu",
	"Thika",
	"Machakos",
	"Syokimau",
	"Kitengela",
	"Rongai",
	"Ngong",
}

type ServiceAreaResult struct {
	Location string
	Served   bool
	Matched  string
	Estimate string
	Message  string
}

type IServiceAreaUseCase interface {
	Check(location string) (ServiceAreaResult, error)
}

type ServiceAreaUseCase struct {
	localities []string
}

var _ IServiceAreaUseCase = (*ServiceAreaUseCase)(nil)

func NewServiceAreaUseCase(localities []string) *ServiceAreaUseCase {
	if len(localities) == 0 {
		localities = DefaultServedLocalities
	}
	cp := make([]string, len(localities))
	copy(cp, localities)
	return &ServiceAreaUseCase{localities: cp}
}

// Check reports the location as served when it contains one of the localities,
// case-insensitively. "Karen, Nairobi" and "karen" are served; "Ka" is not.
func (u *ServiceAreaUseCase) Check(location string) (ServiceAreaResult, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return ServiceAreaResult{}, ErrInvalidLocation
	}
	needle := strings.ToLower(location)
	for _, l := range u.localities {
		hay := strings.ToLower(l)
		if strings.Contains(needle, hay) {
			return ServiceAreaResult{
				Location: location,
				Served:   true,
				Matched:  l,
				Estimate: serviceAreaEstimate,
				Message:  fmt.Sprintf("Great news! We serve %s. A technician can visit within %s.", l, serviceAreaEstimate),
			}, nil
		}
	}
	return ServiceAreaResult{
		Location: location,
		Served:   false,
		Message:  fmt.Sprintf("We do not cover %s yet. Contact us and we will let you know when we expand.", location),
	}, nil
}
