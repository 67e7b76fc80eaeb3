package config

import "time"

// Redis Redis配置信息. An empty Address disables the profile cache.
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
	// ProfileTTL is in seconds.
	ProfileTTL int `json:"profile_ttl" yaml:"profile_ttl"`
}

func (r *Redis) Enabled() bool {
	return r != nil && r.Address != ""
}

func (r *Redis) TTL() time.Duration {
	if r == nil || r.ProfileTTL <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(r.ProfileTTL) * time.Second
}
