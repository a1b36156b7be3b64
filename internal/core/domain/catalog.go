package domain

// DefaultArtifacts returns the artifacts required by the try-on application, in fetch order.
func DefaultArtifacts() []Artifact {
	return []Artifact{
		{
			Name:     "moondream2",
			Title:    "Moondream2",
			Strategy: StrategySnapshot,
			Repo:     Repo{ID: "vikhyatk/moondream2"},
			Dest:     "moondream2",
			Marker:   "moondream2/config.json",
			EnvVar:   "MOONDREAM_MODEL_PATH",
		},
		{
			Name:     "segformer-b3-fashion",
			Title:    "SegFormer B3 Fashion",
			Strategy: StrategySnapshot,
			Repo:     Repo{ID: "sayeed99/segformer-b3-fashion"},
			Dest:     "segformer-b3-fashion",
			Marker:   "segformer-b3-fashion/config.json",
			EnvVar:   "MASKING_SEG_MODEL_PATH",
		},
		{
			Name:        "humanparsing",
			Title:       "LIP Parsing Model (ONNX)",
			Strategy:    StrategyFileWithFallback,
			Repo:        Repo{ID: "pngwn/IDM-VTON", Type: RepoSpace},
			RemotePath:  "ckpt/humanparsing/parsing_lip.onnx",
			Dest:        "humanparsing/parsing_lip.onnx",
			Scaffold:    "ckpt",
			// Pinned to the public host so the fallback still works when a custom hub endpoint is down.
			FallbackURL: "https://huggingface.co/spaces/pngwn/IDM-VTON/resolve/main/ckpt/humanparsing/parsing_lip.onnx",
			EnvVar:      "MASKING_Onnx_MODEL_PATH",
		},
		{
			Name:       "segformer-b2-clothes",
			Title:      "SegFormer B2 Clothes (ONNX)",
			Strategy:   StrategyFile,
			Repo:       Repo{ID: "mattmdjaga/segformer_b2_clothes"},
			RemotePath: "onnx/model.onnx",
			Dest:       "segformer_b2_clothes.onnx",
			Scaffold:   "onnx",
			EnvVar:     "DRESS_SEG_MODEL_PATH",
		},
		{
			Name:       "fooocus-expansion",
			Title:      "Fooocus Expansion",
			Strategy:   StrategyFile,
			Repo:       Repo{ID: "lllyasviel/misc"},
			RemotePath: "fooocus_expansion.bin",
			Dest:       "prompt_expansion/fooocus_expansion/pytorch_model.bin",
		},
		{
			Name:        "betterthanwords-lora",
			Title:       "BetterThanWords SDXL LoRA",
			Strategy:    StrategyFile,
			Repo:        Repo{ID: "AiWise/BetterThanWords-merged-SDXL-LoRA-v3"},
			RemotePath:  "BetterThanWords-merged-SDXL-LoRA-v3.safetensors",
			DownloadDir: "loras",
			Dest:        "loras/BetterThanWords-merged-SDXL-LoRA-v3.safetensors",
		},
	}
}

// DefaultChecklist returns the critical files checked after the fetch phase.
func DefaultChecklist() []ChecklistEntry {
	return []ChecklistEntry{
		{Artifact: "segformer-b2-clothes", Path: "segformer_b2_clothes.onnx"},
		{Artifact: "segformer-b3-fashion", Path: "segformer-b3-fashion/config.json"},
		{Artifact: "humanparsing", Path: "humanparsing/parsing_lip.onnx"},
		{Artifact: "fooocus-expansion", Path: "prompt_expansion/fooocus_expansion/pytorch_model.bin"},
		{Artifact: "betterthanwords-lora", Path: "loras/BetterThanWords-merged-SDXL-LoRA-v3.safetensors"},
	}
}

// PathHints returns the downstream environment variables and the paths they should hold.
// The order matches the summary printed after the fetch phase.
func PathHints(root string, artifacts []Artifact) []PathHint {
	order := []string{"DRESS_SEG_MODEL_PATH", "MASKING_SEG_MODEL_PATH", "MASKING_Onnx_MODEL_PATH", "MOONDREAM_MODEL_PATH"}
	byVar := make(map[string]Artifact, len(artifacts))
	for _, a := range artifacts {
		if a.EnvVar != "" {
			byVar[a.EnvVar] = a
		}
	}

	hints := make([]PathHint, 0, len(byVar))
	for _, name := range order {
		a, ok := byVar[name]
		if !ok {
			continue
		}
		hints = append(hints, PathHint{Name: name, Path: a.DestPath(root)})
		delete(byVar, name)
	}
	// Variables outside the known order keep declaration order.
	for _, a := range artifacts {
		if _, ok := byVar[a.EnvVar]; ok {
			hints = append(hints, PathHint{Name: a.EnvVar, Path: a.DestPath(root)})
			delete(byVar, a.EnvVar)
		}
	}
	return hints
}

// PathHint pairs a downstream environment variable with a resolved path.
type PathHint struct {
	Name string
	Path string
}
