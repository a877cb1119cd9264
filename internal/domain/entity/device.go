// Package entity contains the core business objects of the project.
package entity

// Device is an access-control device installed at an address.
// The console only reads devices.
type Device struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	SerialNumber  string         `json:"serialNumber,omitempty"`
	AddressID     *int64         `json:"addressId"`
	IsOnline      bool           `json:"isOnline"`
	IsEnabled     bool           `json:"isEnabled"`
	Subscriptions []Subscription `json:"subscriptions,omitempty"`
}

// AtAddress reports whether the device is installed at the given address.
func (d *Device) AtAddress(addressID int64) bool {
	return d.AddressID != nil && *d.AddressID == addressID
}

// SubscriberIDs returns the distinct user IDs subscribed to the device in order of appearance.
func (d *Device) SubscriberIDs() []int64 {
	seen := make(map[int64]struct{}, len(d.Subscriptions))
	ids := make([]int64, 0, len(d.Subscriptions))
	for _, sub := range d.Subscriptions {
		if sub.UserID == 0 {
			continue
		}
		if _, ok := seen[sub.UserID]; ok {
			continue
		}
		seen[sub.UserID] = struct{}{}
		ids = append(ids, sub.UserID)
	}

	return ids
}

// Subscription links a user to a device.
type Subscription struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

// DeviceSummary is the compact device representation embedded in addresses.
type DeviceSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsOnline bool   `json:"isOnline"`
}
