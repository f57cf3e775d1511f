package commands

const (
	_etc = "/usr/local/etc/uhppoted"
	_var = "/usr/local/var/uhppoted"

	DEFAULT_WORKDIR     = _var + "/sheets-dashboard"
	DEFAULT_CREDENTIALS = _etc + "/sheets-dashboard/.google/credentials.json"
	DEFAULT_CONFIG      = _etc + "/sheets-dashboard/dashboard.yaml"
)
