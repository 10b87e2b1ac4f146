package request

// SetAVMTokenRequest is the payload for storing the AVM provider API token.
type SetAVMTokenRequest struct {
	Token string `json:"token"`
}
