package checkoutControllers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/models"
)

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		FullName:       "Amine Benali",
		Email:          "amine@example.com",
		Phone:          "0550123456",
		WilayaID:       16,
		DairaID:        160,
		CommuneID:      1600,
		AddressDetails: "Rue Didouche Mourad, Bt 4",
	}
}

func TestFieldErrorsOnValidRequest(t *testing.T) {
	require.Empty(t, validRequest().FieldErrors())
}

func TestFieldErrorsRequiredFields(t *testing.T) {
	req := validRequest()
	req.FullName = "  "
	req.Phone = ""
	req.AddressDetails = ""

	errs := req.FieldErrors()
	require.Contains(t, errs, "full_name")
	require.Contains(t, errs, "phone")
	require.Contains(t, errs, "address_details")
	require.NotContains(t, errs, "email")
}

func TestFieldErrorsEmailShape(t *testing.T) {
	for _, bad := range []string{"", "not-an-email", "a@b", "a b@c.com", "@example.com"} {
		req := validRequest()
		req.Email = bad
		require.Contains(t, req.FieldErrors(), "email", "email %q should be rejected", bad)
	}

	req := validRequest()
	req.Email = "amine.benali@mail.example.dz"
	require.NotContains(t, req.FieldErrors(), "email")
}

func TestValidateRegionConsistentTriple(t *testing.T) {
	wilaya := models.Wilaya{ID: 16, Name: "Alger"}
	daira := models.Daira{ID: 160, Name: "Bab El Oued", WilayaID: 16}
	commune := models.Commune{ID: 1600, Name: "Casbah", DairaID: 160}

	require.Empty(t, ValidateRegion(wilaya, daira, commune))
}

func TestValidateRegionRejectsForeignDaira(t *testing.T) {
	// Wilaya 16 (Alger) submitted with daira 203, which belongs to wilaya 9.
	wilaya := models.Wilaya{ID: 16, Name: "Alger"}
	daira := models.Daira{ID: 203, Name: "Boufarik", WilayaID: 9}
	commune := models.Commune{ID: 2030, Name: "Soumaa", DairaID: 203}

	errs := ValidateRegion(wilaya, daira, commune)
	require.Contains(t, errs, "daira")
	require.NotContains(t, errs, "commune")
}

func TestValidateRegionRejectsForeignCommune(t *testing.T) {
	wilaya := models.Wilaya{ID: 16, Name: "Alger"}
	daira := models.Daira{ID: 160, Name: "Bab El Oued", WilayaID: 16}
	commune := models.Commune{ID: 99, Name: "Sidi Akkacha", DairaID: 21}

	errs := ValidateRegion(wilaya, daira, commune)
	require.Contains(t, errs, "commune")
	require.NotContains(t, errs, "daira")
}

func TestValidateRegionRejectsFullyMismatchedTriple(t *testing.T) {
	wilaya := models.Wilaya{ID: 16}
	daira := models.Daira{ID: 203, WilayaID: 9}
	commune := models.Commune{ID: 77, DairaID: 88}

	errs := ValidateRegion(wilaya, daira, commune)
	require.Len(t, errs, 2)
}

func TestLookupRegionZeroIDIsNotFound(t *testing.T) {
	err := lookupRegion(nil, 0, &models.Wilaya{})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
