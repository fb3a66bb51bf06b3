package ui

import "apptemplate/internal/route"

// Screens of the app.
const (
	ScreenHome    route.Name = "Home"
	ScreenDetails route.Name = "Details"
)

// NewRouteTable declares every screen and the params it requires.
// Unexpected params are rejected so typos surface immediately.
func NewRouteTable() *route.Table {
	return route.NewTable(route.WithExtraFields(route.ExtraReject)).
		MustRegister(ScreenHome, route.Schema{}).
		MustRegister(ScreenDetails, route.Schema{Fields: []route.Field{
			{Name: "itemId", Kind: route.KindInt},
			{Name: "title", Kind: route.KindString},
		}})
}

// DetailsParams are the typed params of ScreenDetails.
type DetailsParams struct {
	ItemID int
	Title  string
}

// Params converts p to route params.
func (p DetailsParams) Params() route.Params {
	return route.Params{"itemId": p.ItemID, "title": p.Title}
}

// ParseDetailsParams reads params that passed ScreenDetails validation.
func ParseDetailsParams(params route.Params) DetailsParams {
	return DetailsParams{
		ItemID: params.Int("itemId"),
		Title:  params.String("title"),
	}
}
