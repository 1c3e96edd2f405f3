package models

// Monitor is one camera definition. The server serializes numeric columns
// as strings; fields stay strings to match the wire.
type Monitor struct {
	ID       string `json:"Id"`
	Name     string `json:"Name"`
	Function string `json:"Function"`
	Enabled  string `json:"Enabled"`
	Type     string `json:"Type"`
	Width    string `json:"Width"`
	Height   string `json:"Height"`
}

// MonitorStatus is the live state the server reports alongside a monitor.
type MonitorStatus struct {
	Status     string `json:"Status"`
	CaptureFPS string `json:"CaptureFPS"`
}

// MonitorItem is one element of the monitors listing envelope.
type MonitorItem struct {
	Monitor Monitor       `json:"Monitor"`
	Status  MonitorStatus `json:"Monitor_Status"`
}
