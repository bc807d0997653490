package database

import "sync"

const connectionTag = "Conexión establecida a la base de datos."

// Connection is the shared stand-in for "being connected to storage".
type Connection struct {
	tag string
}

func (c *Connection) Tag() string {
	return c.tag
}

// ConnectionProvider hands out a single Connection, created on first use.
//
// Build one provider in the composition root and inject it; every Get on
// that provider, from any goroutine, returns the same *Connection.
type ConnectionProvider struct {
	once sync.Once
	conn *Connection
}

func NewConnectionProvider() *ConnectionProvider {
	return &ConnectionProvider{}
}

func (p *ConnectionProvider) Get() *Connection {
	p.once.Do(func() {
		p.conn = &Connection{tag: connectionTag}
	})
	return p.conn
}
