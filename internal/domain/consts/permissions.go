package consts

import "os"

// File permissions
const (
	PermsHomeProgDir os.FileMode = 0o755
	PermsOutputDir   os.FileMode = 0o755
	PermsGenericFile os.FileMode = 0o644
	PermsLogFile     os.FileMode = 0o644
)
