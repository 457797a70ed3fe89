package render

// Markdown renders markdown content for terminal display.
// Renderers are pooled per option set since a TermRenderer must not be
// shared between concurrent Render calls.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}
