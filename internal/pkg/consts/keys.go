package consts

const (
	SeedLockKey     = "seed:bootstrap:lock"
	RevokedTokenKey = "auth:revoked:"
)

// DedupeSystem identifies this service to the cross-system de-dupe cache.
const DedupeSystem = "dcm"
