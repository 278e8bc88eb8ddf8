package config

// FirebaseConfigured reports whether the Firebase project has enough settings
// to build an app: an API key for the password endpoints and a project id.
func (c Config) FirebaseConfigured() bool {
	return c.FirebaseAPIKey != "" && c.FirebaseAPIKey != "YOUR_API_KEY" && c.FirebaseProjectID != ""
}

// CloudinaryConfigured reports whether all Cloudinary credentials are set.
func (c Config) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}
