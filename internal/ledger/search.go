package ledger

import "github.com/UltraPrikol/wallet/internal/model"

// Search returns the records whose field equals value exactly, in ledger
// order. An unknown field fails even on an empty ledger; an empty result is
// not an error.
func Search(records []model.Record, field model.Field, value string) ([]model.Record, error) {
	if _, err := (model.Record{}).Get(field); err != nil {
		return nil, err
	}

	var found []model.Record
	for _, rec := range records {
		if v, _ := rec.Get(field); v == value {
			found = append(found, rec)
		}
	}
	return found, nil
}
