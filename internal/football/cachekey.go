package football

import (
	"net/url"
)

// CacheKey builds the cache key of an operation. Parameters are encoded in
// key order and empty values are dropped, so equivalent queries share a key.
func CacheKey(op string, params url.Values) string {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				q.Add(k, v)
			}
		}
	}
	if len(q) == 0 {
		return op
	}

	return op + "?" + q.Encode()
}
