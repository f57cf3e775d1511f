package commands

const (
	_etc = `C:\ProgramData\uhppoted`
	_var = `C:\ProgramData\uhppoted\var`

	DEFAULT_WORKDIR     = _var + `\sheets-dashboard`
	DEFAULT_CREDENTIALS = _etc + `\sheets-dashboard\.google\credentials.json`
	DEFAULT_CONFIG      = _etc + `\sheets-dashboard\dashboard.yaml`
)
