package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProperty() *Property {
	return &Property{
		Title:        "Casa no centro",
		Purpose:      PurposeSale,
		Price:        450000,
		Neighborhood: "Centro",
		Broker:       Broker{Name: BrokerHelo},
	}
}

func TestPropertyValidate(t *testing.T) {
	t.Parallel()
	require.NoError(t, validProperty().Validate())
}

func TestPropertyValidateUnknownBroker(t *testing.T) {
	t.Parallel()
	p := validProperty()
	p.Broker.Name = "Nobody"
	assert.ErrorIs(t, p.Validate(), ErrUnknownBroker)
}

func TestPropertyValidateInvalidPurpose(t *testing.T) {
	t.Parallel()
	p := validProperty()
	p.Purpose = "lease"
	assert.ErrorIs(t, p.Validate(), ErrInvalidPurpose)
}

func TestPropertyValidateNegativePrice(t *testing.T) {
	t.Parallel()
	p := validProperty()
	p.Price = -1
	assert.ErrorIs(t, p.Validate(), ErrNegativePrice)
}

func TestPropertyValidateMultipleMainImages(t *testing.T) {
	t.Parallel()
	p := validProperty()
	p.Images = []PropertyImage{
		{URL: "a.jpg", IsMain: true},
		{URL: "b.jpg", IsMain: true},
	}
	assert.ErrorIs(t, p.Validate(), ErrMultipleMainImgs)
}

func TestPropertyValidatePromotesFirstImage(t *testing.T) {
	t.Parallel()
	p := validProperty()
	p.Images = []PropertyImage{
		{URL: "a.jpg"},
		{URL: "b.jpg"},
	}
	require.NoError(t, p.Validate())
	assert.True(t, p.Images[0].IsMain)
	assert.False(t, p.Images[1].IsMain)

	main, ok := p.MainImage()
	require.True(t, ok)
	assert.Equal(t, "a.jpg", main.URL)
}

func TestPropertyValidateKeepsExistingMain(t *testing.T) {
	t.Parallel()
	p := validProperty()
	p.Images = []PropertyImage{
		{URL: "a.jpg"},
		{URL: "b.jpg", IsMain: true},
	}
	require.NoError(t, p.Validate())
	assert.False(t, p.Images[0].IsMain)
	assert.True(t, p.Images[1].IsMain)
}

func TestMainImageEmptyGallery(t *testing.T) {
	t.Parallel()
	p := validProperty()
	require.NoError(t, p.Validate())
	_, ok := p.MainImage()
	assert.False(t, ok)
}

func TestBrokerRoster(t *testing.T) {
	t.Parallel()
	for _, b := range BrokerRoster {
		assert.True(t, b.Valid())
	}
	assert.False(t, BrokerName("").Valid())
}

func TestPropertyStatusValid(t *testing.T) {
	t.Parallel()
	for _, s := range []PropertyStatus{StatusPending, StatusActive, StatusRejected, StatusSold, StatusRented} {
		assert.True(t, s.Valid())
	}
	assert.False(t, PropertyStatus("archived").Valid())
}
