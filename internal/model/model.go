// Package model holds the launch, rocket and launchpad records as served by
// the SpaceX v4 API.
package model

import (
	"strings"
	"time"
)

type Launch struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DateUTC      string `json:"date_utc"`
	Success      *bool  `json:"success"`
	Upcoming     bool   `json:"upcoming"`
	Details      string `json:"details"`
	Rocket       string `json:"rocket"`
	Launchpad    string `json:"launchpad"`
	FlightNumber int    `json:"flight_number"`
}

// Date parses DateUTC. ok is false when the field is empty or malformed.
func (l Launch) Date() (time.Time, bool) {
	if l.DateUTC == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, l.DateUTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Succeeded and Failed distinguish an explicit outcome from an unknown one.
func (l Launch) Succeeded() bool {
	return l.Success != nil && *l.Success
}

func (l Launch) Failed() bool {
	return l.Success != nil && !*l.Success
}

func (l Launch) HasDetails() bool {
	return strings.TrimSpace(l.Details) != ""
}

type Mass struct {
	Kg float64 `json:"kg"`
	Lb float64 `json:"lb"`
}

type Length struct {
	Meters float64 `json:"meters"`
	Feet   float64 `json:"feet"`
}

type Rocket struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Mass          Mass     `json:"mass"`
	Height        Length   `json:"height"`
	CostPerLaunch int64    `json:"cost_per_launch"`
	Company       string   `json:"company"`
	Description   string   `json:"description"`
	FlickrImages  []string `json:"flickr_images"`
}

type Launchpad struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Region   string `json:"region"`
	Locality string `json:"locality"`
	Details  string `json:"details"`
}
