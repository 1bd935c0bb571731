package httpclient

// Param is one query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Order is kept when the
// query string is built.
type Params []Param

// NewParams builds Params from alternating keys and values. A trailing key
// without a value gets an empty value.
func NewParams(kv ...string) Params {
	p := make(Params, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		var v string
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		p.Set(kv[i], v)
	}
	return p
}

// Set replaces the value of key in place, or appends it.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	p.Add(key, value)
}

// Add appends key even if it is already present.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns the first value for key.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}
