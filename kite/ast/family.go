package ast

func (*ClassDecl) typeDecl()          {}
func (*InterfaceDecl) typeDecl()      {}
func (*AnnotationTypeDecl) typeDecl() {}

func (*ClassDecl) bodyDecl()            {}
func (*InterfaceDecl) bodyDecl()        {}
func (*AnnotationTypeDecl) bodyDecl()   {}
func (*FieldDecl) bodyDecl()            {}
func (*ConstantDecl) bodyDecl()         {}
func (*MethodDecl) bodyDecl()           {}
func (*InterfaceMethodDecl) bodyDecl()  {}
func (*AnnotationMemberDecl) bodyDecl() {}
func (*ConstructorDecl) bodyDecl()      {}
func (*InitializerDecl) bodyDecl()      {}

func (*BlockStmt) stmt()                     {}
func (*LocalVarDeclStmt) stmt()              {}
func (*EmptyStmt) stmt()                     {}
func (*ExprStmt) stmt()                      {}
func (*IfStmt) stmt()                        {}
func (*WhileStmt) stmt()                     {}
func (*DoStmt) stmt()                        {}
func (*ForStmt) stmt()                       {}
func (*ForEachStmt) stmt()                   {}
func (*TryStmt) stmt()                       {}
func (*SwitchStmt) stmt()                    {}
func (*SynchronizedStmt) stmt()              {}
func (*LabeledStmt) stmt()                   {}
func (*BreakStmt) stmt()                     {}
func (*ContinueStmt) stmt()                  {}
func (*ReturnStmt) stmt()                    {}
func (*ThrowStmt) stmt()                     {}
func (*AssertStmt) stmt()                    {}
func (*ExplicitConstructorInvocation) stmt() {}

func (*IntegerLiteralExpr) expr()     {}
func (*LongLiteralExpr) expr()        {}
func (*DoubleLiteralExpr) expr()      {}
func (*CharLiteralExpr) expr()        {}
func (*StringLiteralExpr) expr()      {}
func (*BooleanLiteralExpr) expr()     {}
func (*NullLiteralExpr) expr()        {}
func (*NameExpr) expr()               {}
func (*FieldAccessExpr) expr()        {}
func (*ArrayAccessExpr) expr()        {}
func (*MethodInvocationExpr) expr()   {}
func (*MethodReferenceExpr) expr()    {}
func (*ObjectCreationExpr) expr()     {}
func (*ArrayCreationExpr) expr()      {}
func (*ArrayInitializerExpr) expr()   {}
func (*LambdaExpr) expr()             {}
func (*ThisExpr) expr()               {}
func (*SuperExpr) expr()              {}
func (*TypeLiteralExpr) expr()        {}
func (*TypeExpr) expr()               {}
func (*BinaryExpr) expr()             {}
func (*UnaryExpr) expr()              {}
func (*AssignExpr) expr()             {}
func (*ConditionalExpr) expr()        {}
func (*CastExpr) expr()               {}
func (*InstanceOfExpr) expr()         {}
func (*EnclosedExpr) expr()           {}
func (*MarkerAnnotation) expr()       {}
func (*SingleMemberAnnotation) expr() {}
func (*NormalAnnotation) expr()       {}

func (*MarkerAnnotation) annotation()       {}
func (*SingleMemberAnnotation) annotation() {}
func (*NormalAnnotation) annotation()       {}

func (*PrimitiveType) typ() {}
func (*ClassType) typ()     {}
func (*ArrayType) typ()     {}
func (*WildcardType) typ()  {}
func (*VoidType) typ()      {}
