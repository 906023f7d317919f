package rest

import (
	"encoding/json"

	"github.com/X1ag/BahnBestpreis/internal/domain"
	"github.com/X1ag/BahnBestpreis/internal/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// searchPricesBody keeps every field raw so that numbers, numeric strings
// and booleans can be coerced the lenient way clients expect.
type searchPricesBody struct {
	Start                            json.RawMessage `json:"start"`
	Ziel                             json.RawMessage `json:"ziel"`
	Abfahrtab                        json.RawMessage `json:"abfahrtab"`
	Klasse                           json.RawMessage `json:"klasse"`
	SchnelleVerbindungen             json.RawMessage `json:"schnelleVerbindungen"`
	NurDeutschlandTicketVerbindungen json.RawMessage `json:"nurDeutschlandTicketVerbindungen"`
	MaximaleUmstiege                 json.RawMessage `json:"maximaleUmstiege"`
	DayLimit                         json.RawMessage `json:"dayLimit"`
}

type requiredFields struct {
	Start     string `validate:"required"`
	Ziel      string `validate:"required"`
	Abfahrtab string `validate:"required"`
}

func (b *searchPricesBody) toSearchRequest() (*domain.SearchRequest, error) {
	req := &domain.SearchRequest{
		Start:             utils.LooseString(b.Start),
		Destination:       utils.LooseString(b.Ziel),
		StartDate:         utils.LooseString(b.Abfahrtab),
		TravelClass:       utils.LooseString(b.Klasse),
		FastOnly:          utils.Truthy(b.SchnelleVerbindungen),
		GermanyTicketOnly: utils.Truthy(b.NurDeutschlandTicketVerbindungen),
		MaxTransfers:      utils.LooseInt(b.MaximaleUmstiege),
	}
	if days := utils.LooseInt(b.DayLimit); days != nil {
		req.DayLimit = *days
	}

	if err := validate.Struct(requiredFields{
		Start:     req.Start,
		Ziel:      req.Destination,
		Abfahrtab: req.StartDate,
	}); err != nil {
		return nil, domain.ErrMissingFields
	}
	return req, nil
}
