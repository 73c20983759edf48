// Package domain contains the football entities (competitions, teams,
// players, fixtures, league tables and stored snapshots) together with the
// league code table and the validation rules for query parameters. These types
// are free of transport and storage concerns so the client, the service layer
// and the API can share them.
package domain
