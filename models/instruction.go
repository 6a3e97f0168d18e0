package models

// AccountMeta describes one account referenced by an instruction, together
// with the flags the token program expects for it.
type AccountMeta struct {
	// Pubkey is the base58-encoded address of the account.
	Pubkey string `json:"pubkey"`

	// IsSigner reports whether the account must sign the transaction.
	IsSigner bool `json:"is_signer"`

	// IsWritable reports whether the instruction may modify the account.
	IsWritable bool `json:"is_writable"`
}

// Instruction is the payload returned by the token instruction endpoints.
// It carries everything the caller needs to place the instruction into a
// transaction of their own: the owning program, the ordered account list,
// and the serialized instruction data.
type Instruction struct {
	// ProgramID is the base58-encoded address of the token program.
	ProgramID string `json:"program_id"`

	// Accounts is the ordered account list dictated by the instruction layout.
	Accounts []AccountMeta `json:"accounts"`

	// InstructionData is the base64-encoded instruction payload.
	InstructionData string `json:"instruction_data"`
}
