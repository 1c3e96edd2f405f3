package models

// Event is one recorded event.
type Event struct {
	ID        string `json:"Id"`
	MonitorID string `json:"MonitorId"`
	Name      string `json:"Name"`
	Cause     string `json:"Cause"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
	Length    string `json:"Length"`
	Frames    string `json:"Frames"`
	MaxScore  string `json:"MaxScore"`
}

// EventItem is one element of the events listing envelope.
type EventItem struct {
	Event Event `json:"Event"`
}

// Pagination describes the server-side paging of an events listing.
type Pagination struct {
	Page      int `json:"page"`
	Current   int `json:"current"`
	Count     int `json:"count"`
	Limit     int `json:"limit"`
	PageCount int `json:"pageCount"`
}
