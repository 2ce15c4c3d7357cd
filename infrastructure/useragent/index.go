package useragent

import "github.com/mileusna/useragent"

// UserAgent is the subset of a parsed User-Agent header worth logging for a POS device.
type UserAgent struct {
	Bot       bool   `json:"bot"`
	OS        string `json:"os"`
	OSVersion string `json:"osVersion"`
	Device    string `json:"device"`
	Name      string `json:"name"`
	Version   string `json:"version"`
}

func ParseUserAgent(userAgent string) *UserAgent {
	parsed := useragent.Parse(userAgent)
	return &UserAgent{
		Bot:       parsed.Bot,
		OS:        parsed.OS,
		OSVersion: parsed.OSVersion,
		Device:    parsed.Device,
		Name:      parsed.Name,
		Version:   parsed.Version,
	}
}
