package concepts

import (
	"fmt"
	"net/url"
)

const invitationPlaceholder = "https://picsum.photos/600/800?grayscale"

func formatPlaceholders(seed string) []string {
	out := make([]string, 3)
	for i := range out {
		out[i] = fmt.Sprintf("https://picsum.photos/seed/%s/400/400?grayscale", url.PathEscape(fmt.Sprintf("%s%d", seed, i+1)))
	}
	return out
}

// formatPrompts describes the three mockup views of a physical format.
func formatPrompts(suggestion string) []string {
	return []string{
		fmt.Sprintf(`Front view of a closed wedding invitation. The key feature is its unique physical format: "%s". Clean, minimalist, high-quality product mockup on a neutral light gray studio background with soft shadows. Modern, elegant, photorealistic style. Focus on material texture and shape.`, suggestion),
		fmt.Sprintf(`45-degree angle view of a partially open wedding invitation with the format: "%s". Showcases the 3D structure, unique cuts, and folds. Clean, elegant, high-quality product mockup on a neutral off-white studio background with soft lighting. Photorealistic and sophisticated style.`, suggestion),
		fmt.Sprintf(`Top-down view of a fully opened wedding invitation with the format: "%s". Clearly displays the internal layout and how it unfolds. Focus on the complete shape. High-quality, modern product mockup on a neutral light-colored studio background. Minimalist and photorealistic style.`, suggestion),
	}
}
