package agg

import "github.com/DiogoCoutinz/DashboardComercial/internal/models"

// Option extractors read the full unfiltered record set of a domain and
// project the legal values per filterable dimension. Blank values are
// removed, strings sort lexicographically, years numeric-descending so the
// most recent year comes first, months keep first-encounter order. An empty
// row set yields empty slices, never nil panics downstream.

func ProspectingOptionsOf(rows []models.ProspectingRecord) models.ProspectingOptions {
	return models.ProspectingOptions{
		Agents:   distinctSorted(rows, func(r models.ProspectingRecord) string { return r.Agent }),
		Channels: distinctSorted(rows, func(r models.ProspectingRecord) string { return r.Channel }),
		Offers:   distinctSorted(rows, func(r models.ProspectingRecord) string { return r.Offer }),
		Years:    distinctYears(rows, func(r models.ProspectingRecord) int { return r.Year }),
		Quarters: distinctSorted(rows, func(r models.ProspectingRecord) string { return r.Quarter }),
		Months:   distinctInOrder(rows, func(r models.ProspectingRecord) string { return r.Month }),
	}
}

func PipelineOptionsOf(rows []models.PipelineRecord) models.PipelineOptions {
	return models.PipelineOptions{
		Closers:        distinctSorted(rows, func(r models.PipelineRecord) string { return r.Closer }),
		Offers:         distinctSorted(rows, func(r models.PipelineRecord) string { return r.Offer }),
		OriginAgents:   distinctSorted(rows, func(r models.PipelineRecord) string { return r.OriginAgent }),
		OriginChannels: distinctSorted(rows, func(r models.PipelineRecord) string { return r.OriginChannel }),
		Years:          distinctYears(rows, func(r models.PipelineRecord) int { return r.Year }),
		Quarters:       distinctSorted(rows, func(r models.PipelineRecord) string { return r.Quarter }),
		Months:         distinctInOrder(rows, func(r models.PipelineRecord) string { return r.Month }),
	}
}

func RevenueOptionsOf(rows []models.RevenueRecord) models.RevenueOptions {
	return models.RevenueOptions{
		Executives:  distinctSorted(rows, func(r models.RevenueRecord) string { return r.Executive }),
		Offers:      distinctSorted(rows, func(r models.RevenueRecord) string { return r.Offer }),
		Markets:     distinctSorted(rows, func(r models.RevenueRecord) string { return r.Market }),
		Closers:     distinctSorted(rows, func(r models.RevenueRecord) string { return r.Closer }),
		Consultants: distinctSorted(rows, func(r models.RevenueRecord) string { return r.Consultant }),
		Channels:    distinctSorted(rows, func(r models.RevenueRecord) string { return r.Channel }),
		Years:       distinctYears(rows, func(r models.RevenueRecord) int { return r.Year }),
		Quarters:    distinctSorted(rows, func(r models.RevenueRecord) string { return r.Quarter }),
		Months:      distinctInOrder(rows, func(r models.RevenueRecord) string { return r.Month }),
	}
}
