package response

type AdminStatsResponse struct {
	Users      UserStats     `json:"users"`
	Properties PropertyStats `json:"properties"`
	Leads      LeadStats     `json:"leads"`
	Messaging  MessageStats  `json:"messaging"`
	Catalog    CatalogStats  `json:"catalog"`
}

type UserStats struct {
	Total   int64 `json:"total"`
	Admins  int64 `json:"admins"`
	Brokers int64 `json:"brokers"`
	Clients int64 `json:"clients"`
}

type PropertyStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Reserved  int64 `json:"reserved"`
	Sold      int64 `json:"sold"`
}

type LeadStats struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Qualified int64 `json:"qualified"`
	Closed    int64 `json:"closed"`
}

type MessageStats struct {
	Unread int64 `json:"unread"`
}

type CatalogStats struct {
	Categories      int64 `json:"categories"`
	ActiveServices  int64 `json:"active_services"`
	ActiveProviders int64 `json:"active_providers"`
}
