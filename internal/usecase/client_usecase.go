package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"ordenes_xpto/internal/domain/entities"
	"ordenes_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidClientName = errors.New("invalid client name")
)

type IClientUseCase interface {
	SaveClient(ctx context.Context, client entities.Client) error
}

type ClientUseCase struct {
	sink interfaces.IPersistenceSink
	conn interfaces.IConnection
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(sink interfaces.IPersistenceSink, conn interfaces.IConnection) *ClientUseCase {
	return &ClientUseCase{sink: sink, conn: conn}
}

// SaveClient records the client description through the shared connection.
func (u *ClientUseCase) SaveClient(ctx context.Context, client entities.Client) error {
	if client.ID <= 0 {
		return ErrInvalidClientID
	}
	if strings.TrimSpace(client.Name) == "" {
		return ErrInvalidClientName
	}

	if err := u.sink.Record(ctx, client.String(), u.conn.Tag()); err != nil {
		log.Printf("[client][usecase] save failed client_id=%d err=%v", client.ID, err)
		return err
	}
	log.Printf("[client][usecase] saved client_id=%d", client.ID)
	return nil
}
