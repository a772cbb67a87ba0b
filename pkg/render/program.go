package render

// BuildProgram compiles the shader pair and links it into a program.
func BuildProgram(b Backend, vertSource, fragSource string) (Program, error) {
	vs, err := b.CreateShader(VertexShader, vertSource)
	if err != nil {
		return nil, err
	}

	fs, err := b.CreateShader(FragmentShader, fragSource)
	if err != nil {
		return nil, err
	}

	p, err := b.CreateProgram(vs, fs)
	if err != nil {
		return nil, err
	}

	Logger().Debug("program linked")

	return p, nil
}

// LookupAttrib returns the location of a program attribute.
func LookupAttrib(b Backend, p Program, name string) (Attrib, error) {
	loc := b.AttribLocation(p, name)
	if loc < 0 {
		return loc, LocationNotFound.New("attribute %q not found", name)
	}
	return loc, nil
}

// LookupUniform returns the location of a program uniform.
func LookupUniform(b Backend, p Program, name string) (Uniform, error) {
	u, ok := b.UniformLocation(p, name)
	if !ok {
		return nil, LocationNotFound.New("uniform %q not found", name)
	}
	return u, nil
}
