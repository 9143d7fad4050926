package domain

// Fingerprint stores an enrolled biometric template. FingerData is the raw
// sensor template; the backend treats it as opaque bytes.
type Fingerprint struct {
	FingerID   string `json:"finger_id"`
	UserID     string `json:"user_id"`
	FingerData []byte `json:"finger_data"`
}
