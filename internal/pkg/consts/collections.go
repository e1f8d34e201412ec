package consts

// Collection names, one per entity kind. Users are partitioned by their own
// id; every other collection is partitioned by userId.
const (
	UsersCollection     = "dcm-users"
	EarningsCollection  = "dcm-earnings"
	TiersCollection     = "dcm-tiers"
	QuestsCollection    = "dcm-quests"
	PostsCollection     = "dcm-posts"
	AnalyticsCollection = "dcm-analytics"
)
