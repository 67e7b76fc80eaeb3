package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int `json:"expires_in" yaml:"expires_in"`
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}
