package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing the health check redis key
	PfxHealthCheck = "healthcheck"
)

// CustomKey joins the key components with the specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins the key components with a colon
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the first one or two colon separated components of a key
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return s[0] + ":" + s[1]
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
