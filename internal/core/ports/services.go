package ports

// CacheService memoises rendered results for the lifetime of a session.
type CacheService interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
