package interfaces

import "context"

//go:generate mockgen -source=persistence_sink_interface.go -destination=mocks/persistence_sink_interface_mock.go -package=mock_interfaces

// IPersistenceSink is the external collaborator that stores (or logs) an
// entity description together with the connection it was saved through.
//
// Implementations: console (reference behavior), DynamoDB, SQLite.
type IPersistenceSink interface {
	Record(ctx context.Context, description string, connectionTag string) error
}

// IConnection is the shared connection handle injected into use cases.
type IConnection interface {
	Tag() string
}
