package transition

// Version is the current release of the transition engine.
const Version = "0.1.0"
