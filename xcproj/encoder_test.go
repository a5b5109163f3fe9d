package xcproj

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/xcproj/encode"
	"github.com/signadot/xcproj/ir"
)

func mustString(n *ir.Node) string {
	return encode.MustString(n)
}

func TestEncodeLegacyTarget(t *testing.T) {
	tgt := NewLegacyTarget("AAAA", "Tool")
	tgt.BuildConfigurationList = Ptr("BBBB")
	tgt.BuildPhases = []string{"P1", "P9"}
	tgt.Dependencies = []string{"D1"}
	reg := NewRegistry(
		tgt,
		NewConfigurationList("BBBB"),
		NewShellScriptBuildPhase("P1", "make"),
		&TargetDependency{Base: Base{Ref: "D1"}},
	)
	key, rec := NewEncoder(reg).EncodeObject(tgt)
	if key != ir.Commented("AAAA", "Tool") || key.Comment != "Tool" {
		t.Errorf("key %+v", key)
	}
	want := `{
	isa = PBXLegacyTarget;
	buildConfigurationList = BBBB /* Build configuration list for PBXLegacyTarget "Tool" */;
	buildPhases = (
		P1 /* ShellScript */,
		P9,
	);
	dependencies = (
		D1 /* PBXTargetDependency */,
	);
	name = Tool;
	passBuildSettingsInEnvironment = 0;
}`
	if diff := cmp.Diff(want, mustString(rec)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeDanglingConfigurationList(t *testing.T) {
	tgt := NewLegacyTarget("AAAA", "Tool")
	tgt.BuildConfigurationList = Ptr("BBBB")
	buf := bytes.NewBuffer(nil)
	e := NewEncoder(NewRegistry(tgt), WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
	_, rec := e.EncodeObject(tgt)
	n := ir.Get(rec, "buildConfigurationList")
	if n == nil {
		t.Fatal("buildConfigurationList not written")
	}
	if n.Str.String != "BBBB" || n.Str.HasComment() {
		t.Errorf("got %+v", n.Str)
	}
	if !strings.Contains(buf.String(), "dangling reference") || !strings.Contains(buf.String(), "BBBB") {
		t.Errorf("no warning: %s", buf)
	}
}

func TestEncodeVariantGroup(t *testing.T) {
	g := NewVariantGroup("V1", "F1", "F2", "F3")
	g.SourceTree = Ptr(SourceTreeGroup)
	g.Comments = Ptr("localized")
	reg := NewRegistry(
		g,
		&FileReference{Base: Base{Ref: "F1"}, Name: Ptr("en"), Path: Ptr("en.lproj/Main.strings")},
		&FileReference{Base: Base{Ref: "F2"}, Path: Ptr("fr.lproj/Main.strings")},
	)
	key, rec := NewEncoder(reg).EncodeObject(g)
	if key.HasComment() {
		t.Errorf("unnamed group has key comment %q", key.Comment)
	}
	want := `{
	isa = PBXVariantGroup;
	children = (
		F1 /* en */,
		F2 /* fr.lproj/Main.strings */,
		F3,
	);
	comments = localized;
	sourceTree = "<group>";
}`
	if diff := cmp.Diff(want, mustString(rec)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	g.Name = Ptr("Main.strings")
	if key, _ := NewEncoder(reg).EncodeObject(g); key.Comment != "Main.strings" {
		t.Errorf("key %+v", key)
	}
}

func TestEncodeBuildFileNames(t *testing.T) {
	files := NewBuildPhase(IsaFrameworksBuildPhase, "P1", "B1", "B2", "B3")
	reg := NewRegistry(
		files,
		NewBuildFile("B1", "F1"),
		&BuildFile{Base: Base{Ref: "B2"}, ProductRef: Ptr("X1")},
		NewBuildFile("B3", "F404"),
		NewBuildFile("B4", "F1"),
		NewFileReference("F1", "libz.tbd", SourceTreeSDKRoot),
		&Unknown{
			Base:    Base{Ref: "X1"},
			IsaName: "XCSwiftPackageProductDependency",
			Record:  ir.FromKeyVals([]ir.KeyVal{{Key: ir.Commented("productName", ""), Val: ir.FromString("Logging")}}),
		},
	)
	e := NewEncoder(reg)
	tests := map[string]string{
		"B1": "libz.tbd in Frameworks",
		"B2": "Logging in Frameworks",
		"B3": "",
		"B4": "",
		"P1": "Frameworks",
		"F1": "libz.tbd",
	}
	for ref, want := range tests {
		obj, _ := reg.Get(ref)
		got, _ := e.DisplayName(obj)
		if got != want {
			t.Errorf("%s: got %q want %q", ref, got, want)
		}
	}
	_, rec := e.EncodeObject(files)
	want := "(\n\tB1 /* libz.tbd in Frameworks */,\n\tB2 /* Logging in Frameworks */,\n\tB3,\n)"
	if got := mustString(ir.Get(rec, "files")); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if name, ok := reg.DisplayName("B1"); !ok || name != "libz.tbd in Frameworks" {
		t.Errorf("registry display name %q", name)
	}
}

func TestEncodeFlowRecords(t *testing.T) {
	f := NewFileReference("F1", "main.c", SourceTreeGroup)
	f.LastKnownFileType = Ptr("sourcecode.c.c")
	b := NewBuildFile("B1", "F1")
	b.Settings = ir.FromKeyVals([]ir.KeyVal{{Key: ir.Commented("ATTRIBUTES", ""), Val: ir.FromStrings([]string{"Public"})}})
	p := NewBuildPhase(IsaHeadersBuildPhase, "P1", "B1")
	e := NewEncoder(NewRegistry(f, b, p))
	kvs := e.EncodeSection([]Object{b})
	kvs = append(kvs, e.EncodeSection([]Object{f})...)
	got := mustString(ir.FromKeyVals(kvs))
	want := `{

/* Begin PBXBuildFile section */
	B1 /* main.c in Headers */ = {isa = PBXBuildFile; fileRef = F1 /* main.c */; settings = {ATTRIBUTES = (Public, ); }; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
	F1 /* main.c */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.c.c; path = main.c; sourceTree = "<group>"; };
/* End PBXFileReference section */
}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeObjectsSections(t *testing.T) {
	reg := NewRegistry(
		NewLegacyTarget("T2", "Two"),
		NewGroup("G1"),
		NewLegacyTarget("T1", "One"),
		NewBuildConfiguration("K1", "Release"),
	)
	objs := NewEncoder(reg).EncodeObjects()
	var keys, markers []string
	for i, k := range objs.Fields {
		keys = append(keys, k.String)
		markers = append(markers, objs.Values[i].Leading...)
		markers = append(markers, objs.Values[i].Trailing...)
	}
	if diff := cmp.Diff([]string{"G1", "T1", "T2", "K1"}, keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	wantMarkers := []string{
		"", "/* Begin PBXGroup section */", "/* End PBXGroup section */",
		"", "/* Begin PBXLegacyTarget section */", "/* End PBXLegacyTarget section */",
		"", "/* Begin XCBuildConfiguration section */", "/* End XCBuildConfiguration section */",
	}
	if diff := cmp.Diff(wantMarkers, markers); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := NewEncoder(reg).EncodeSection(nil); got != nil {
		t.Errorf("empty section %v", got)
	}
}

func TestEncodeOmission(t *testing.T) {
	tests := []struct {
		obj  Object
		want []string
	}{
		{NewLegacyTarget("T1", "Tool"), []string{"isa", "buildPhases", "dependencies", "name", "passBuildSettingsInEnvironment"}},
		{NewGroup("G1"), []string{"isa", "children"}},
		{NewBuildConfiguration("K1", "Debug"), []string{"isa", "buildSettings", "name"}},
		{&ContainerItemProxy{Base: Base{Ref: "C1"}, ContainerPortal: "P1"}, []string{"isa", "containerPortal", "proxyType"}},
		{NewProject("P1", "G1"), []string{"isa", "hasScannedForEncodings", "mainGroup", "projectDirPath", "projectRoot", "targets"}},
		{NewCopyFilesBuildPhase("P2"), []string{"isa", "buildActionMask", "dstSubfolderSpec", "files", "runOnlyForDeploymentPostprocessing"}},
		{NewNativeTarget("T2", "App", "com.apple.product-type.tool"), []string{"isa", "buildPhases", "buildRules", "dependencies", "name", "productType"}},
		{NewAggregateTarget("T3", "All"), []string{"isa", "buildPhases", "dependencies", "name"}},
	}
	for _, tt := range tests {
		_, rec := NewEncoder(NewRegistry(tt.obj)).EncodeObject(tt.obj)
		var got []string
		for _, k := range rec.Fields {
			got = append(got, k.String)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.obj.Isa(), diff)
		}
	}
}

func TestEncodeNativeTarget(t *testing.T) {
	app := NewNativeTarget("T1", "App", "com.apple.product-type.application")
	app.BuildConfigurationList = Ptr("L1")
	app.BuildPhases = []string{"P1", "P9"}
	app.PackageProductDependencies = []string{"X1"}
	app.ProductReference = Ptr("F1")
	reg := NewRegistry(
		app,
		NewConfigurationList("L1"),
		NewBuildPhase(IsaSourcesBuildPhase, "P1"),
		NewFileReference("F1", "App.app", SourceTreeBuiltProducts),
		&Unknown{
			Base:    Base{Ref: "X1"},
			IsaName: "XCSwiftPackageProductDependency",
			Record:  ir.FromKeyVals([]ir.KeyVal{{Key: ir.Commented("productName", ""), Val: ir.FromString("Logging")}}),
		},
	)
	key, rec := NewEncoder(reg).EncodeObject(app)
	if key.Comment != "App" {
		t.Errorf("key %+v", key)
	}
	want := `{
	isa = PBXNativeTarget;
	buildConfigurationList = L1 /* Build configuration list for PBXNativeTarget "App" */;
	buildPhases = (
		P1 /* Sources */,
		P9,
	);
	buildRules = (
	);
	dependencies = (
	);
	name = App;
	packageProductDependencies = (
		X1 /* Logging */,
	);
	productReference = F1 /* App.app */;
	productType = "com.apple.product-type.application";
}`
	if diff := cmp.Diff(want, mustString(rec)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"P9"}, reg.Dangling()); diff != "" {
		t.Errorf("dangling (-want +got):\n%s", diff)
	}
	if name, ok := reg.TargetName("T1"); !ok || name != "App" {
		t.Errorf("target name %q", name)
	}
}

func TestEncodeNameWithCommentTerminator(t *testing.T) {
	doc := NewDocument("Odd")
	doc.RootObject = "P1"
	doc.Objects.Add(NewProject("P1", "G1"))
	doc.Objects.Add(NewGroup("G1", "F1"))
	doc.Objects.Add(NewFileReference("F1", "a*/b.c", SourceTreeGroup))
	out, err := Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte(`F1 /* a*\/b.c */,`)) {
		t.Errorf("comment not escaped in\n%s", out)
	}
	back, err := Unmarshal(out)
	if err != nil {
		t.Fatalf("%v in\n%s", err, out)
	}
	for _, ref := range doc.Objects.References() {
		a, _ := doc.Objects.Get(ref)
		b, _ := back.Objects.Get(ref)
		if !Equal(a, b) {
			t.Errorf("%s: got %+v want %+v", ref, b, a)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	settings := NewBuildConfiguration("K1", "Debug")
	settings.SetSetting("SDKROOT", "macosx")
	settings.SetSetting("OTHER_LDFLAGS", "-ObjC", "-lz")
	settings.BaseConfigurationReference = Ptr("F2")
	tgt := NewLegacyTarget("T1", "Tool")
	tgt.BuildArgumentsString = Ptr("$(ACTION)")
	tgt.BuildToolPath = Ptr("/usr/bin/make")
	tgt.BuildWorkingDirectory = Ptr("")
	tgt.BuildPhases = []string{"P2", "P1"}
	tgt.PassBuildSettingsInEnvironment = 1
	tgt.ProductName = Ptr("tool")
	copyPhase := NewCopyFilesBuildPhase("P3", "B1")
	copyPhase.DstPath = Ptr("$(PRODUCT_NAME)")
	copyPhase.DstSubfolderSpec = 16
	app := NewNativeTarget("T2", "App", "com.apple.product-type.application")
	app.BuildConfigurationList = Ptr("L1")
	app.BuildPhases = []string{"P2"}
	app.PackageProductDependencies = []string{"X1"}
	app.ProductName = Ptr("App")
	app.ProductReference = Ptr("F1")
	all := NewAggregateTarget("T3", "All")
	all.Dependencies = []string{"D1"}
	objs := []Object{
		tgt,
		settings,
		app,
		all,
		copyPhase,
		NewShellScriptBuildPhase("P1", "echo hi\n"),
		NewBuildPhase(IsaResourcesBuildPhase, "P2"),
		NewBuildFile("B1", "F1"),
		&FileReference{Base: Base{Ref: "F1"}, FileEncoding: Ptr(uint(4)), Name: Ptr("a b"), Path: Ptr("a b.c")},
		NewVariantGroup("V1", "F1"),
		&TargetDependency{Base: Base{Ref: "D1"}, Name: Ptr("dep"), Target: Ptr("T1")},
		&ContainerItemProxy{Base: Base{Ref: "C1"}, ContainerPortal: "P0", ProxyType: 1, RemoteInfo: Ptr("Tool")},
		&ConfigurationList{Base: Base{Ref: "L1"}, BuildConfigurations: []string{"K1"}, DefaultConfigurationName: Ptr("Debug")},
		&Project{
			Base:         Base{Ref: "P0"},
			MainGroup:    "V1",
			KnownRegions: []string{},
			Targets:      []string{"T1", "T2", "T3"},
			ProjectRoot:  "..",
		},
	}
	reg := NewRegistry(objs...)
	e := NewEncoder(reg)
	for _, obj := range objs {
		_, rec := e.EncodeObject(obj)
		back, err := DecodeObject(obj.Reference(), mustParse(t, mustString(rec)))
		if err != nil {
			t.Errorf("%s: %v", obj.Reference(), err)
			continue
		}
		if !Equal(obj, back) {
			t.Errorf("%s: got %+v want %+v", obj.Reference(), back, obj)
		}
	}
	if Equal(objs[0], objs[1]) {
		t.Errorf("different variants compare equal")
	}
}
