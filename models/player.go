package models

// PlayerID identifies a club member on a tournament roster.
// It maps to the users table primary key but is kept as its own type so the
// scheduling engine never depends on user records.
type PlayerID int64
