package entities

import (
	"bytes"
	"testing"

	"ordenes_xpto/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewService_Variants verifies the factory picks the variant and its perform line.
func TestNewService_Variants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind    ServiceKind
		perform string
	}{
		{kind: ServiceKindRepair, perform: "Reparación realizada.\n"},
		{kind: ServiceKindITSupport, perform: "Soporte técnico brindado.\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.kind), func(t *testing.T) {
			t.Parallel()

			svc, err := NewService(tc.kind, 1, "x", 10.0)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, svc.Kind())
			assert.Equal(t, 1, svc.ID())
			assert.Equal(t, "x", svc.Description())
			assert.Equal(t, 10.0, svc.Cost())

			var out bytes.Buffer
			require.NoError(t, svc.Perform(&out))
			assert.Equal(t, tc.perform, out.String())
		})
	}
}

// TestNewService_UnknownKind verifies unknown tags fail with the invalid argument error.
func TestNewService_UnknownKind(t *testing.T) {
	t.Parallel()

	svc, err := NewService("bogus", 1, "x", 10.0)
	assert.Nil(t, svc)
	require.ErrorIs(t, err, ErrInvalidServiceType)
	assert.Equal(t, "Tipo de servicio no válido.", err.Error())
	assert.Equal(t, pkg.KindInvalidArgument, pkg.Classify(err).Kind)
}

// TestNewService_CostNotValidated verifies the factory keeps negative costs as given.
func TestNewService_CostNotValidated(t *testing.T) {
	t.Parallel()

	svc, err := NewService(ServiceKindRepair, 1, "x", -5)
	require.NoError(t, err)
	assert.Equal(t, -5.0, svc.Cost())
}

// TestService_String verifies the human readable rendering.
func TestService_String(t *testing.T) {
	t.Parallel()

	svc, err := NewService(ServiceKindRepair, 1, "Reparación de lavadora", 150)
	require.NoError(t, err)
	assert.Equal(t, "Servicio[ID: 1, Descripción: Reparación de lavadora, Costo: 150.00]", svc.String())
}

// TestParseServiceKind verifies raw tags are validated case-sensitively.
func TestParseServiceKind(t *testing.T) {
	t.Parallel()

	k, err := ParseServiceKind("soporteIT")
	require.NoError(t, err)
	assert.Equal(t, ServiceKindITSupport, k)

	_, err = ParseServiceKind("SoporteIT")
	assert.ErrorIs(t, err, ErrInvalidServiceType)
}

// TestParty_String verifies client and technician renderings.
func TestParty_String(t *testing.T) {
	t.Parallel()

	c := Client{ID: 1, Name: "Felix Velazquez", Number: "3012892860"}
	assert.Equal(t, "Cliente[ID: 1, Nombre: Felix Velazquez, Contacto: 3012892860]", c.String())

	tech := Technician{ID: 1, Name: "Gabriel Valeta", Specialty: "Reparación de electrodomésticos"}
	assert.Equal(t, "Técnico[ID: 1, Nombre: Gabriel Valeta, Especialidad: Reparación de electrodomésticos]", tech.String())
}
