package data

// Collection names in the document store. The three collections carry the
// whole persisted state; there is no migration path if their shape changes.
const (
	CollectionUsers        = "users"
	CollectionJobs         = "jobs"
	CollectionApplications = "applications"
)
