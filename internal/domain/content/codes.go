package content

// Code category ids.
const (
	CategoryPython  = "python"
	CategoryOvito   = "ovito"
	CategoryFortran = "fortran"
	CategoryCPP     = "cpp"

	DefaultCategory = CategoryPython
)

// CodeCategory is a tab of the code repository section.
type CodeCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Categories returns the code categories in display order.
func Categories() []CodeCategory {
	return []CodeCategory{
		{ID: CategoryPython, Name: "Python", Description: "Analysis tools for atomistic data and MD simulations"},
		{ID: CategoryOvito, Name: "Ovito", Description: "Visualization and analysis scripts for atomistic systems"},
		{ID: CategoryFortran, Name: "Fortran", Description: "High-performance scientific computing codes"},
		{ID: CategoryCPP, Name: "C++", Description: "Optimized computational physics implementations"},
	}
}

// Category looks up a category by id.
func Category(id string) (CodeCategory, bool) {
	for _, c := range Categories() {
		if c.ID == id {
			return c, true
		}
	}
	return CodeCategory{}, false
}

// CodesForTab returns the samples of a category. Unknown ids get the python
// samples.
func CodesForTab(id string) []CodeSample {
	switch id {
	case CategoryOvito:
		return ovitoCodes()
	case CategoryFortran:
		return fortranCodes()
	case CategoryCPP:
		return cppCodes()
	default:
		return pythonCodes()
	}
}

func pythonCodes() []CodeSample {
	return []CodeSample{
		{
			Title: "ADF_analysis1.py",
			Description: "Analyses MD trajectory to determine RDF and position of 1st local minimum (r1, first coordination sphere). " +
				"Within r1 cutoff, finds atomic triplets and calculates angles, averaging for all atoms and for N-coordinated atoms.",
			Tags:     []string{"angular distribution function", "partial ADF", "MD/QMD", "solids & liquids"},
			Features: []string{"RDF Calculation", "Triplet Analysis", "Angle Distribution", "Coordination Analysis"},
			FilePath: "/Codes/Python/ADF_analysis1.py",
		},
		{
			Title: "RDF_analysis1.py",
			Description: "Finds RDF and contribution from differently coordinated atoms within first coordination sphere " +
				"(1st local minimum in RDF). Comprehensive analysis of radial distribution functions.",
			Tags:     []string{"MD/QMD", "RDF", "pRDF", "solids and liquids"},
			Features: []string{"Partial RDF", "Coordination Numbers", "First Shell Analysis", "Statistical Analysis"},
			FilePath: "/Codes/Python/RDF_analysis1.py",
		},
		{
			Title: "Clapeyron_analysis.py",
			Description: "Calculate properties of melting from solid/liquid trajectories at same PT conditions. " +
				"Implements Clapeyron equation analysis for phase transitions.",
			Tags:     []string{"Clapeyron", "melting", "entropy of melting", "latent heat", "MD/QMD"},
			Features: []string{"Phase Transitions", "Thermodynamic Properties", "Melting Analysis", "Entropy Calculation"},
			FilePath: "/Codes/Python/Clapeyron_analysis.py",
		},
	}
}

func ovitoCodes() []CodeSample {
	return []CodeSample{
		{
			Title:       "Structure_Analysis.py",
			Description: "Ovito modifier for advanced structure identification and defect analysis in crystalline materials.",
			Tags:        []string{"structure analysis", "defects", "crystalline", "visualization"},
			Features:    []string{"Defect Detection", "Structure ID", "Grain Boundaries", "Dislocation Analysis"},
			FilePath:    "/Codes/Ovito/Structure_Analysis.py",
		},
		{
			Title:       "Stress_Tensor.py",
			Description: "Calculate and visualize local stress tensors in atomistic simulations using Ovito framework.",
			Tags:        []string{"stress analysis", "mechanical properties", "visualization"},
			Features:    []string{"Stress Calculation", "Tensor Visualization", "Mechanical Analysis", "Color Mapping"},
			FilePath:    "/Codes/Ovito/Stress_Tensor.py",
		},
	}
}

func fortranCodes() []CodeSample {
	return []CodeSample{
		{
			Title:       "MD_Engine.f90",
			Description: "High-performance molecular dynamics engine with MPI parallelization for large-scale simulations.",
			Tags:        []string{"molecular dynamics", "MPI", "parallel computing", "HPC"},
			Features:    []string{"MPI Parallelization", "Force Calculations", "Integrators", "Thermostats"},
			FilePath:    "/Codes/Fortran/MD_Engine.f90",
		},
		{
			Title:       "DFT_Interface.f90",
			Description: "Interface module for coupling molecular dynamics with density functional theory calculations.",
			Tags:        []string{"DFT", "quantum mechanics", "hybrid methods", "ab-initio"},
			Features:    []string{"QM/MM Interface", "Electronic Structure", "Force Coupling", "Energy Calculations"},
			FilePath:    "/Codes/Fortran/DFT_Interface.f90",
		},
	}
}

func cppCodes() []CodeSample {
	return []CodeSample{
		{
			Title:       "MLIP_Trainer.cpp",
			Description: "Machine learning interatomic potential trainer with support for SNAP and ACE descriptors.",
			Tags:        []string{"machine learning", "MLIP", "SNAP", "ACE", "training"},
			Features:    []string{"ML Training", "Descriptor Calculation", "Optimization", "Cross-validation"},
			FilePath:    "/Codes/C++/MLIP_Trainer.cpp",
		},
		{
			Title:       "Shock_Simulator.cpp",
			Description: "Specialized code for shock wave simulations with advanced boundary conditions and analysis.",
			Tags:        []string{"shock physics", "wave propagation", "extreme conditions"},
			Features:    []string{"Shock Generation", "Wave Analysis", "Boundary Conditions", "Post-processing"},
			FilePath:    "/Codes/C++/Shock_Simulator.cpp",
		},
	}
}
