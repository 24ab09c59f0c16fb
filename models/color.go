package models

import "github.com/color-game/schemefinder/palette"

// ColorHSL is a converted color as served to clients
type ColorHSL struct {
	Hex string `json:"hex"`
	H   int    `json:"h"`
	S   int    `json:"s"`
	L   int    `json:"l"`
}

// SchemeResponse is one palette in load order
type SchemeResponse struct {
	Colors []ColorHSL `json:"colors"`
}

// SchemeListResponse wraps a list of schemes with its length
type SchemeListResponse struct {
	Count   int              `json:"count"`
	Schemes []SchemeResponse `json:"schemes"`
}

type ReferenceStateResponse struct {
	BaseColor ColorHSL `json:"baseColor"`
	Tolerance int      `json:"tolerance"`
}

type BaseColorRequest struct {
	Hex string `json:"hex"`
}

type ToleranceRequest struct {
	Tolerance *int `json:"tolerance"`
}

type LoadSchemesRequest struct {
	Schemes [][]string `json:"schemes"`
}

type LoadSchemesResponse struct {
	Loaded int `json:"loaded"`
	Total  int `json:"total"`
}

func NewColorHSL(c palette.Color) ColorHSL {
	return ColorHSL{
		Hex: c.SourceHex,
		H:   c.Hue,
		S:   c.Saturation,
		L:   c.Lightness,
	}
}

func NewSchemeListResponse(schemes []palette.Scheme) SchemeListResponse {
	resp := SchemeListResponse{
		Count:   len(schemes),
		Schemes: make([]SchemeResponse, 0, len(schemes)),
	}
	for _, scheme := range schemes {
		colors := make([]ColorHSL, 0, len(scheme))
		for _, c := range scheme {
			colors = append(colors, NewColorHSL(c))
		}
		resp.Schemes = append(resp.Schemes, SchemeResponse{Colors: colors})
	}
	return resp
}

func NewReferenceStateResponse(state palette.ReferenceState) ReferenceStateResponse {
	return ReferenceStateResponse{
		BaseColor: NewColorHSL(state.BaseColor),
		Tolerance: state.Tolerance,
	}
}
