package domain

// CompileOptions are the switches handed to the external compiler.
type CompileOptions struct {
	// ReplaceIDs replaces generated identifiers with stable debug names.
	ReplaceIDs bool `json:"replace_ids" yaml:"replace_ids" mapstructure:"replace_ids"`
	// AutoWithdrawGas lets the compiler inject gas withdrawal calls.
	// The caller owns gas accounting when it is off.
	AutoWithdrawGas bool `json:"auto_withdraw_gas" yaml:"auto_withdraw_gas" mapstructure:"auto_withdraw_gas"`
}

// DefaultCompileOptions returns the options every compile request uses:
// identifier replacement on, automatic gas withdrawal off.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{
		ReplaceIDs:      true,
		AutoWithdrawGas: false,
	}
}
