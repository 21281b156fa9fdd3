package expbox

// Version is the expbox release version.
const Version = "0.1.0"
