package postgres

import "github.com/google/uuid"

// validID reports whether id can be compared against a uuid column. Postgres
// rejects malformed uuid text outright, so such ids are treated as absent.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
