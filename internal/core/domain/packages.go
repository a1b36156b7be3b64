package domain

// Package is an installable package identifier with an optional version constraint.
type Package struct {
	Name string
	// Constraint is appended verbatim, e.g. "<2.3.0", ">=2.4.0" or "==1.19.2".
	Constraint string
}

// String renders the package in requirement syntax.
func (p Package) String() string {
	return p.Name + p.Constraint
}

// Specs renders each package in requirement syntax.
func Specs(pkgs []Package) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.String()
	}
	return out
}

// DefaultSystemPackages returns the native libraries needed by the CV stack.
func DefaultSystemPackages() []Package {
	return []Package{
		{Name: "libgl1"},
		{Name: "libglib2.0-0"},
		{Name: "libsm6"},
		{Name: "libxext6"},
		{Name: "libxrender1"},
		{Name: "ffmpeg"},
		{Name: "wget"},
	}
}

// ConflictingPackages returns the inference engines removed before installing the pinned one.
func ConflictingPackages() []Package {
	return []Package{
		{Name: "onnxruntime"},
		{Name: "onnxruntime-gpu"},
	}
}

// DefaultPythonPackages returns the superset of Python requirements for the application.
func DefaultPythonPackages() []Package {
	return []Package{
		{Name: "huggingface_hub"},
		{Name: "gradio"},
		{Name: "numpy", Constraint: "<2.3.0"},
		{Name: "opencv-python-headless"},
		{Name: "torch", Constraint: ">=2.4.0"},
		{Name: "torchvision"},
		{Name: "accelerate"},
		{Name: "einops"},
		{Name: "timm"},
		{Name: "ultralytics"},
		{Name: "onnxruntime-gpu", Constraint: "==1.19.2"},
		{Name: "nvidia-cudnn-cu12"},
		{Name: "mediapipe", Constraint: "==0.10.9"},
		{Name: "protobuf", Constraint: "<3.20.4"},
		{Name: "transformers"},
		{Name: "pillow"},
	}
}
