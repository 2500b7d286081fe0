package entity

// PushAction is a button rendered on the notification.
type PushAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

// PushMessageData is delivered to the service worker alongside the notification.
type PushMessageData struct {
	URL        string `json:"url"`
	CampaignID string `json:"campaign_id"`
	StoreID    string `json:"store_id"`
}

// PushMessage is the payload shared by every recipient of a dispatch.
type PushMessage struct {
	Title              string          `json:"title"`
	Body               string          `json:"body"`
	Icon               string          `json:"icon"`
	Badge              string          `json:"badge"`
	Data               PushMessageData `json:"data"`
	Actions            []PushAction    `json:"actions"`
	RequireInteraction bool            `json:"requireInteraction"`
	Vibrate            []int           `json:"vibrate"`
}

// PushDefaults supplies fallbacks for optional campaign fields.
type PushDefaults struct {
	Icon  string
	Badge string
	URL   string
}

// NewPushMessage builds the outbound message for a campaign.
func NewPushMessage(campaign *Campaign, defaults PushDefaults) *PushMessage {
	icon := defaults.Icon
	if campaign.Icon != nil && *campaign.Icon != "" {
		icon = *campaign.Icon
	}

	url := defaults.URL
	if campaign.URL != nil && *campaign.URL != "" {
		url = *campaign.URL
	}

	return &PushMessage{
		Title: campaign.Title,
		Body:  campaign.Body,
		Icon:  icon,
		Badge: defaults.Badge,
		Data: PushMessageData{
			URL:        url,
			CampaignID: campaign.ID.String(),
			StoreID:    campaign.StoreID,
		},
		Actions: []PushAction{
			{Action: "open", Title: "👀 Ver"},
			{Action: "close", Title: "✖️ Cerrar"},
		},
		RequireInteraction: false,
		Vibrate:            []int{200, 100, 200},
	}
}
