// Package mensa provides an HTTP service for the Studierendenwerk Berlin
// cafeteria ("Mensa") menu. It fetches the daily menu page from the
// Studierendenwerk endpoint, extracts structured meal data (categories,
// meal names, tri-tier prices, sustainability and quality tags) and serves
// it as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package mensa
