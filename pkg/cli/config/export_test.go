package config

func Credential(c *GitHub) string {
	return c.credential()
}
