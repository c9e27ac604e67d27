package checkoutControllers

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/Abdessamed08/boutique-api/models"
)

// CheckoutRequest is the submitted checkout form. Everything in it gets
// frozen onto the order on success.
type CheckoutRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	WilayaID       uint   `json:"wilaya_id"`
	DairaID        uint   `json:"daira_id"`
	CommuneID      uint   `json:"commune_id"`
	AddressDetails string `json:"address_details"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldErrors validates the scalar fields. Region ids are validated
// separately against the database.
func (r CheckoutRequest) FieldErrors() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.FullName) == "" {
		errs["full_name"] = "Full name is required"
	}
	switch {
	case strings.TrimSpace(r.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(r.Email):
		errs["email"] = "Email is not valid"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(r.AddressDetails) == "" {
		errs["address_details"] = "Address details are required"
	}
	return errs
}

// ValidateRegion enforces hierarchy consistency on already-resolved rows: the
// daira must belong to the submitted wilaya and the commune to the submitted
// daira. A mismatched triple is rejected, never silently corrected; client
// side cascading selects are not trusted.
func ValidateRegion(wilaya models.Wilaya, daira models.Daira, commune models.Commune) map[string]string {
	errs := make(map[string]string)
	if daira.WilayaID != wilaya.ID {
		errs["daira"] = "Selected daira does not belong to the selected wilaya"
	}
	if commune.DairaID != daira.ID {
		errs["commune"] = "Selected commune does not belong to the selected daira"
	}
	return errs
}

// resolveRegion loads the submitted wilaya/daira/commune rows and checks
// their consistency. Unknown ids and hierarchy mismatches both come back as
// field errors.
func resolveRegion(db *gorm.DB, req CheckoutRequest) (models.Wilaya, models.Daira, models.Commune, map[string]string, error) {
	var (
		wilaya  models.Wilaya
		daira   models.Daira
		commune models.Commune
	)
	errs := make(map[string]string)

	if err := lookupRegion(db, req.WilayaID, &wilaya); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return wilaya, daira, commune, nil, err
		}
		errs["wilaya"] = "Unknown wilaya"
	}
	if err := lookupRegion(db, req.DairaID, &daira); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return wilaya, daira, commune, nil, err
		}
		errs["daira"] = "Unknown daira"
	}
	if err := lookupRegion(db, req.CommuneID, &commune); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return wilaya, daira, commune, nil, err
		}
		errs["commune"] = "Unknown commune"
	}
	if len(errs) > 0 {
		return wilaya, daira, commune, errs, nil
	}

	return wilaya, daira, commune, ValidateRegion(wilaya, daira, commune), nil
}

func lookupRegion(db *gorm.DB, id uint, dest any) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	return db.First(dest, "id = ?", id).Error
}
