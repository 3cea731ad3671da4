package model

// EncodeRequest is the payload of a single encryption or decryption request.
// Settings left out of the payload fall back to wheels I, II, III
// at zero positions with zeroed rings and an empty plugboard
type EncodeRequest struct {
	Message   string   `binding:"required" json:"message"`
	Rotors    *[3]int  `json:"rotors"`
	Positions *[3]int  `json:"positions"`
	Rings     *[3]int  `json:"rings"`
	Plugboard []string `json:"plugboard"`
}

type EncodeResponse struct {
	Ciphertext string `json:"ciphertext"`
	Letters    int    `json:"letters"`
}
