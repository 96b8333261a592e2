package config

// Storage is the S3 compatible endpoint photos are uploaded to. The endpoint
// defaults to the one of the Supabase project.
type Storage struct {
	Bucket          string `env:"STORAGE_BUCKET" envDefault:"berries"`
	Endpoint        string `env:"STORAGE_S3_ENDPOINT"`
	Region          string `env:"STORAGE_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"STORAGE_S3_ACCESS_KEY_ID" json:"-"`
	SecretAccessKey string `env:"STORAGE_S3_SECRET_ACCESS_KEY" json:"-"`
}

func (s Storage) Enabled() bool {
	return s.AccessKeyID != "" && s.SecretAccessKey != ""
}

func (s Storage) EndpointFor(supabase Supabase) string {
	if s.Endpoint != "" {
		return s.Endpoint
	}

	return supabase.BaseURL() + "/storage/v1/s3"
}
