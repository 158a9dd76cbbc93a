package renderer

// A Result is either a produced Response or a decline.
type Result struct {
	resp *Response
}

// Produced wraps resp as a successful Result.
// Produced(nil) is the same as Declined().
func Produced(resp *Response) Result { return Result{resp: resp} }

// Declined signals the driving pipeline to try the next candidate Renderer.
func Declined() Result { return Result{} }

// Response returns the produced Response, or false if the Renderer declined.
func (res Result) Response() (*Response, bool) { return res.resp, res.resp != nil }
