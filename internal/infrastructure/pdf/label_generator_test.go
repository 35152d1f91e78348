package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
)

func TestGenerateAssetLabel(t *testing.T) {
	g := pdf.NewMarotoLabelGenerator()
	out, err := g.GenerateAssetLabel(context.Background(), reporting.LabelData{
		Asset:     &entity.FixedAsset{Name: "Escritorio", Category: "mobiliario", ProductCode: "123456"},
		Warehouse: &entity.Warehouse{Name: "Principal"},
		Branch:    &entity.Branch{Name: "Norte"},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateAssetLabel_SinActivo(t *testing.T) {
	_, err := pdf.NewMarotoLabelGenerator().GenerateAssetLabel(context.Background(), reporting.LabelData{})
	assert.Error(t, err)
}

func TestGenerateAssetLabel_NombresArabesNoSeImprimen(t *testing.T) {
	out, err := pdf.NewMarotoLabelGenerator().GenerateAssetLabel(context.Background(), reporting.LabelData{
		Asset:     &entity.FixedAsset{Name: "Escritorio", NameAr: "مكتب", ProductCode: "654321"},
		Warehouse: &entity.Warehouse{Name: "Principal", NameAr: "رئيسي"},
		Branch:    &entity.Branch{Name: "Norte", NameAr: "شمال"},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.NotContains(t, string(out), "مكتب")
}
