// Package fleet classifies upstream resource records and syncs the
// vehicles among them into the local fleet table.
//
// Classification is keyword-based on the resource name: room keywords are
// checked first, then vehicle keywords, and an ambiguous resource defaults
// to vehicle. Rooms are recognized only to be discarded.
package fleet
